// Package candidate provides the supplier and courier candidate records a
// line item chooses from, together with the display rank annotation applied
// to them.
//
// Candidates are supplied by external collaborators: suppliers arrive with
// the order payload, couriers are quoted per line item once a supplier is
// chosen (freight cost depends on the supplier's origin postal code). The
// fulfillment core never fabricates candidates; it only annotates them with
// a positional rank for display.
//
// Key rules:
//   - Candidate ordering reflects desirability (best first) as decided by the
//     upstream scoring collaborator; rank labels are positional only
//   - Ranking annotates copies and never mutates the supplied records
//   - A candidate list that already carries rank labels is never re-ranked
package candidate
