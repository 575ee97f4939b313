// Package catalog loads the static chapter list the player offers. The file is
// read once at start-up, records are validated, and failures are returned as
// typed errors so the window can degrade to an inline message.
package catalog
