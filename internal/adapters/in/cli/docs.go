// Package cli is the text front end of the tracker: a scripted Demo that walks
// through every feature, and an interactive Shell reading numbered choices from
// line input. Both only call the menu, user and delivery APIs and print results.
package cli
