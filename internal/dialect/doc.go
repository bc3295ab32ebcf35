// Package dialect recognizes and parses the tabular export layouts of the
// supported collection tools.
//
// A Definition describes one export dialect: its expected headers, which of
// them are strong indicators (empirically unique to that tool), per-field
// value transforms, and any post-processing quirks. The Registry is built
// once at startup and is immutable afterwards. Detection scores every
// registered dialect against the header row and accepts the best candidate
// only when it clears an absolute floor and a margin over the runner-up;
// parsing then maps data rows into normalized card records.
package dialect
