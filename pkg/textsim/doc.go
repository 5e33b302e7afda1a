// Package textsim provides the script-agnostic text similarity
// primitive used by the recall paths.
//
// Similarity is Jaccard overlap over token sets. The default tokenizer
// handles mixed-script text: Latin-script runs are case-folded and
// split on word boundaries, while contiguous runs of characters with
// no inherent word boundaries (CJK scripts and similar) are emitted as
// overlapping two-character windows. Whitespace tokenization alone
// collapses similarity to zero for such scripts, so the bigram
// fallback is part of the contract, not an optimization.
package textsim
