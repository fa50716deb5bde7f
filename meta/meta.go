// meta/meta.go
package meta

// NAME_SIZE is the size of a territory name field. One slot is the
// terminator, so at most NAME_SIZE-1 characters are kept.
const NAME_SIZE = 30

// COLOR_SIZE is the size of an army color field, terminator included.
const COLOR_SIZE = 10

// MAX_TERRITORIES is the capacity of the fixed-size territory registry.
const MAX_TERRITORIES = 5

const DICE_SIDES = 6

// MIN_ATTACK_TROOPS is the number of troops a territory needs to launch an attack.
const MIN_ATTACK_TROOPS = 2

// SIMULATED_TURNS is the length of the scripted demo match.
const SIMULATED_TURNS = 5

// MISSION_SIZE is the maximum length of a mission sentence.
const MISSION_SIZE = 100
