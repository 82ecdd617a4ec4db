package main

import "github.com/harrybrwn/planner/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Stop(err)
	}
}
