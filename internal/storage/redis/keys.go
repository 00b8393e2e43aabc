package redis

import "fmt"

// objectivesKey returns the Redis key for the SET of registered objectives
func objectivesKey(prefix string) string {
	return fmt.Sprintf("%s:objectives", prefix)
}

// objectiveKey returns the Redis key for the ZSET of entries in an objective
func objectiveKey(prefix, objective string) string {
	return fmt.Sprintf("%s:objective:%s", prefix, objective)
}
