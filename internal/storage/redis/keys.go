package redis

import "fmt"

// Key prefix for all tourmate data
const keyPrefix = "tourmate"

// accountKey returns the Redis key for an Account
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// accountIndexKey returns the Redis key for the SET of all usernames
func accountIndexKey() string {
	return fmt.Sprintf("%s:idx:accounts", keyPrefix)
}
