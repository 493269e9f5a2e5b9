// Package alert defines the canonical event model shared by every stage of
// the pipeline: the upstream source enumeration, the source-specific
// severity representations, and the normalized alert event itself.
package alert
