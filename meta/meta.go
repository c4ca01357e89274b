// meta/meta.go
package meta

// DEFAULT_ORDER defines the highest n-gram order used by the model.
const DEFAULT_ORDER = 5

// DEFAULT_LAMBDAS defines the interpolation weights indexed by order, zerogram first.
var DEFAULT_LAMBDAS = []float64{0.01, 0.04, 0.10, 0.20, 0.25, 0.40}

// MAX_MISTAKES defines the mistake cap for evaluation games. It never goes below the alphabet size.
const MAX_MISTAKES = 26

// PLAY_MAX_MISTAKES defines the mistake cap for interactive play.
const PLAY_MAX_MISTAKES = 8

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// TEST_FRACTION defines the share of the corpus held out for evaluation.
const TEST_FRACTION = 0.2

const SEED = 42

// OUTPUT_DIR defines where evaluation runs are stored.
const OUTPUT_DIR = "results"

const LOG_LEVEL = "info"

// TOP_K defines how many entries the table command prints.
const TOP_K = 10
