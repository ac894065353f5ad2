// Package game parses cube-draw game records, checks them against the fixed
// per-color bag limits and folds them into the two totals the tool reports:
// the sum of IDs of possible games and the summed power of every game.
//
// A record is one line of the form
//
//	Game 3: 20 red, 8 green, 6 blue; 4 red, 13 green, 5 blue
//
// Parsing is lenient. A malformed ID or count becomes 0 and an unknown color
// drops the item; only I/O failures are reported as errors.
package game
