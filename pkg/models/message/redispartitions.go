package message

import (
	"fmt"
)

const topicNumber = 5

type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("connect-corners:partition:%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("connect-corners:partition:%d:owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("connect-corners:partition:%d:lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range topicNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}

// PartitionOf spreads games over the partitions by their uid.
func PartitionOf(uid GameUid) RedisPartition {
	sum := 0
	for _, b := range []byte(uid) {
		sum += int(b)
	}
	return RedisPartitions[sum%len(RedisPartitions)]
}
