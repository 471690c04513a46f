// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the decision lifecycle (acquire the target
// file, read its first byte, classify and report), decoupled from any
// specific entrypoint like a CLI.
package app
