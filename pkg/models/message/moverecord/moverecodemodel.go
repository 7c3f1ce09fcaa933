package moverecord

import (
	"context"
	"errors"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MoveRecodeCollectionName = "move_recode"

	duplicateKeyCode = 11000
)

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	// MoveRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecodeModel.
	MoveRecodeModel interface {
		moveRecodeModel
		InsertMany(ctx context.Context, data []*MoveRecode) error
		FindByGameUid(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		*defaultMoveRecodeModel
	}
)

// NewMoveRecodeModel returns a model for the mongo.
func NewMoveRecodeModel(url, db string) MoveRecodeModel {
	conn := mon.MustNewModel(url, db, MoveRecodeCollectionName)
	return &customMoveRecodeModel{
		defaultMoveRecodeModel: newDefaultMoveRecodeModel(conn),
	}
}

func (m *customMoveRecodeModel) InsertMany(ctx context.Context, data []*MoveRecode) error {
	if len(data) == 0 {
		return nil
	}

	documents := make([]any, 0, len(data))
	for _, d := range data {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
		}
		documents = append(documents, d)
	}

	// Unordered, so a retried batch still inserts the records the last try
	// missed.
	_, err := m.conn.InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	return ignoreDuplicates(err)
}

// ignoreDuplicates drops a bulk error made only of duplicate keys, which
// means those records are already stored.
func ignoreDuplicates(err error) error {
	var bulk mongo.BulkWriteException
	if !errors.As(err, &bulk) || bulk.WriteConcernError != nil || len(bulk.WriteErrors) == 0 {
		return err
	}
	for _, e := range bulk.WriteErrors {
		if e.Code != duplicateKeyCode {
			return err
		}
	}
	return nil
}

func (m *customMoveRecodeModel) FindByGameUid(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode
	opts := options.Find().SetSort(bson.D{{Key: "turnNumber", Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": uid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
