// Package services implements the driving ports on top of the ranking
// engine and the driven ports.
package services
