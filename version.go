package main

// _version is the version of docextract.
// It is overridden at build time with -ldflags.
var _version = "dev"
