package moverecord

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StandingRecode struct {
	PlayerID  string `bson:"playerId" json:"playerId"`
	Color     string `bson:"color" json:"color"`
	Score     int    `bson:"score" json:"score"`
	Remaining int    `bson:"remaining" json:"remaining"`
	Perfect   bool   `bson:"perfect" json:"perfect"`
}

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid  `bson:"gameUid" json:"gameUid"`
	Winner    string           `bson:"winner" json:"winner"`
	Turns     int              `bson:"turns" json:"turns"`
	Standings []StandingRecode `bson:"standings" json:"standings"`
}
