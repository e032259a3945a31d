package main

// Version is the version of the update_version CLI.
var Version = "1.0.0"
