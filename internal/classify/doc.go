// Package classify derives coarse category tags for events via static
// keyword tables and case-insensitive substring matching.
//
// Matching is deliberately naive: no tokenization, no word boundaries.
// Short keywords can therefore match inside longer words ("play" inside
// "player"). The tables were tuned against live provider data where the
// false-positive rate is acceptable for a discovery UI; fixing it would
// mean re-tuning every table.
//
// Missing metadata is handled per surface: genre matching is fail-open
// (an event without classification hints is never hidden), text-blob
// matching works on whatever text exists.
package classify
