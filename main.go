package main

import (
	"log"

	"draftshare-cli/cmd"
	"draftshare-cli/fs"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}

func main() {
	cmd.Execute()
}
