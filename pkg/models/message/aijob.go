package message

import (
	"fmt"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// AIJob asks a worker to choose a move for Player on Board.
type AIJob struct {
	TimeStamp
	GameUid
	TurnNumber int
	chess.Board
	Player chess.Player
}

func NewAIJob(str string) (job AIJob, err error) {
	err = sonic.UnmarshalString(str, &job)
	return
}

func (j AIJob) String() string {
	str, _ := sonic.MarshalString(j)
	return str
}

func (j AIJob) ResultKey() AIResultKey {
	return AIResultKey{GameUid: j.GameUid, TurnNumber: j.TurnNumber}
}

type AIResultKey struct {
	GameUid
	TurnNumber int
}

func (k AIResultKey) String() string {
	return fmt.Sprintf("connect-corners:ai:%s:%d", k.GameUid, k.TurnNumber)
}

// AIResult is a worker's answer; Ok is false when the player must pass.
type AIResult struct {
	chess.Placement
	Ok bool
}

func NewAIResult(str string) (result AIResult, err error) {
	err = sonic.UnmarshalString(str, &result)
	return
}

func (r AIResult) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}

// TurnKey holds the turn a game is waiting on, so workers can drop stale
// jobs.
func TurnKey(uid GameUid) string {
	return fmt.Sprintf("connect-corners:game:%s:turn", uid)
}
