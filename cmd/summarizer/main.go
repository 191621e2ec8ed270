package main

import "github.com/nguyentantai21042004/audio-summarizer/internal/cli"

func main() {
	cli.Main()
}
