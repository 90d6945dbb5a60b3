package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRoundID() string {
	return fmt.Sprintf("round_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

func GenerateSessionID() string {
	return fmt.Sprintf("session_%s_%s",
		time.Now().Format("20060102"),
		uuid.NewString())
}
