// Package app contains the application core. It defines the App struct,
// its validated configuration, and the lifecycle that runs one of the
// exercise programs, decoupled from any specific entrypoint like a CLI.
package app
