package gitcmd

// Export unexported functions for testing
var RedactArgsForTest = redactArgs
