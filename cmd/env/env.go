package env

// Prefix is the shared prefix for tsycurve environment variables.
// Flags resolve to variables like TSYCURVE_LISTEN
const Prefix = "TSYCURVE"
