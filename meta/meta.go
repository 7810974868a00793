// meta/meta.go
package meta

// PLAIN_LINE_LIMIT is the largest board, in lines, the driver solves without a table.
const PLAIN_LINE_LIMIT = 10

// Board solved when no configuration is given.
const DEFAULT_RULES = "dots_and_boxes"
const DEFAULT_ROWS = 2
const DEFAULT_COLS = 2

const REPETITIONS = 1

// PARALLELISM bounds the number of independent solves running at once.
const PARALLELISM = 4
