package moverecord

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid    message.GameUid `bson:"gameUid" json:"gameUid"`
	TurnNumber int             `bson:"turnNumber" json:"turnNumber"`
	Player     string          `bson:"player" json:"player"`
	PieceID    string          `bson:"pieceId,omitempty" json:"pieceId,omitempty"`
	Shape      string          `bson:"shape,omitempty" json:"shape,omitempty"`
	X          int             `bson:"x" json:"x"`
	Y          int             `bson:"y" json:"y"`
	Rotation   int             `bson:"rotation" json:"rotation"`
	Flipped    bool            `bson:"flipped" json:"flipped"`
	Passed     bool            `bson:"passed" json:"passed"`
	Auto       bool            `bson:"auto" json:"auto"`
	Credit     int             `bson:"credit" json:"credit"`
	Score      int             `bson:"score" json:"score"`
}
