package main

import (
	"github.com/hashdist/hashdist/cmd"
	"github.com/hashdist/hashdist/pkg/hdlog"
	"github.com/hashdist/hashdist/version"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

// go ldflags
var Version string    // version
var Commit string     // git commit id
var CommitDate string // git commit date

func main() {

	version.Version = Version
	version.Commit = Commit
	version.CommitDate = CommitDate

	undo, err := maxprocs.Set()
	defer undo()
	if err != nil {
		hdlog.Warn("maxprocs set error", zap.Error(err))
	}

	cmd.Execute()

}
