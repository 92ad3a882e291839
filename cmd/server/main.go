package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

//	@title			Driver Planning Backend API
//	@version		1.0
//	@description	Plannings of the drivers, their weekly recurrences, notes and calendar exports.

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	if err := Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
