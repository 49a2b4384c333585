/*
Package launcher implements the macOS application bundle launcher of sshPilot.

The project has two main source packages:
`cmd`: Main applications.
`internal`: Private application and library code.
*/
package launcher
