package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	"attendly.com/attendly/attendance/web/handlers/leave"
	"attendly.com/attendly/core"
	"attendly.com/attendly/infrastructure/communication"
	"attendly.com/attendly/infrastructure/devops"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	dsn := os.Getenv("DSN")
	base64Secret := os.Getenv("ATTENDLY_SIGNING_SECRET")
	bucket := os.Getenv("ATTACHMENTS_BUCKET")
	mailFrom := os.Getenv("NOTIFY_EMAIL_FROM")
	maxConnections := 10
	slackOption := communication.SlackOption{
		InfoChannelID:  os.Getenv("SLACK_INFO_CHANNEL"),
		ErrorChannelID: os.Getenv("SLACK_ERROR_CHANNEL"),
	}

	// Deployed environments read everything from one SSM parameter.
	if paramName := os.Getenv("CONFIG_PARAM"); paramName != "" {
		cfg, err := devops.LoadAppConfig(ctx, paramName)
		if err != nil {
			log.Fatalf("failed to load app config from SSM: %v", err)
		}
		dsn = cfg.DSN
		base64Secret = cfg.SigningSecret
		bucket = cfg.AttachmentsS3
		mailFrom = cfg.NotifyEmail
		if cfg.MaxConnections > 0 {
			maxConnections = cfg.MaxConnections
		}
		if cfg.SlackInfoCh != "" {
			slackOption.InfoChannelID = cfg.SlackInfoCh
		}
		if cfg.SlackErrorCh != "" {
			slackOption.ErrorChannelID = cfg.SlackErrorCh
		}
	}

	if dsn == "" {
		log.Fatal("DSN is not configured")
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil || len(jwtSecret) == 0 {
		log.Fatal("ATTENDLY_SIGNING_SECRET must be a non-empty base64 string")
	}

	dm, err := core.New(dsn, maxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	leaveOpts := leave.Options{AttachmentsBucket: bucket}
	if token := os.Getenv("SLACK_BOT_TOKEN"); token != "" {
		leaveOpts.Slack = communication.NewSlack(token, slackOption)
	}
	if mailFrom != "" {
		mailer, err := communication.NewEmailSender(ctx, mailFrom)
		if err != nil {
			log.Printf("email notifications disabled: %v", err)
		} else {
			leaveOpts.Mailer = mailer
		}
	}

	r := buildRouter(dm, jwtSecret, leaveOpts)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	addr := ":" + port
	log.Printf("attendly listening on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
