package config

import "os"

func Env() string {
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		return v
	}
	return os.Getenv("NODE_ENV")
}
