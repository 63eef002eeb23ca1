package redisx

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

func Open(host, port string) *redis.Client {
	addr := fmt.Sprintf("%s:%s", host, port)
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return rdb
}
