package version

// 通过 go ldflags 注入
var Version string    // version
var Commit string     // git commit id
var CommitDate string // git commit date
