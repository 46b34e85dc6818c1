package app

// MinShellsToStartRound defines how many loaded shells a round needs before it can start.
const MinShellsToStartRound = 1
