package env

import "os"

var (
	RedisPassWord = os.Getenv("REDIS_PASSWORD")
	MongoPassWord = os.Getenv("MONGO_PASSWORD")
)

// Or returns value, or the fallback when value is empty.
func Or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
