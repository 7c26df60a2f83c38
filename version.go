package main

// Version of the bumpversion CLI, overridden at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"
