package moverecord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func bulkError(codes ...int) mongo.BulkWriteException {
	var bulk mongo.BulkWriteException
	for i, code := range codes {
		bulk.WriteErrors = append(bulk.WriteErrors, mongo.BulkWriteError{
			WriteError: mongo.WriteError{Index: i, Code: code},
		})
	}
	return bulk
}

func TestIgnoreDuplicates(t *testing.T) {
	assert.NoError(t, ignoreDuplicates(nil))
	assert.NoError(t, ignoreDuplicates(bulkError(duplicateKeyCode)))
	assert.NoError(t, ignoreDuplicates(fmt.Errorf("insert: %w", bulkError(duplicateKeyCode, duplicateKeyCode))))

	mixed := bulkError(duplicateKeyCode, 121)
	assert.Equal(t, error(mixed), ignoreDuplicates(mixed))

	concern := bulkError(duplicateKeyCode)
	concern.WriteConcernError = &mongo.WriteConcernError{Code: 64}
	assert.Error(t, ignoreDuplicates(concern))

	other := errors.New("connection reset")
	assert.Equal(t, other, ignoreDuplicates(other))
}
