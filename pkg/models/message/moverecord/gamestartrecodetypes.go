package moverecord

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeatRecode struct {
	PlayerID string `bson:"playerId" json:"playerId"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Color    string `bson:"color" json:"color"`
	IsHuman  bool   `bson:"isHuman" json:"isHuman"`
}

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	BoardSize int             `bson:"boardSize" json:"boardSize"`
	Seats     []SeatRecode    `bson:"seats" json:"seats"`
}
