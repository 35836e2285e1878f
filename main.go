package main

import "github.com/ortenszky/Habit-Tracker-Application/cmd"

func main() {
	cmd.Execute()
}
