package ports

import (
	"guildscore/domain/calibration"
	"guildscore/domain/explanation"
	"guildscore/domain/guild"
)

// ScorerPort scores a resolved guild against a calibration artifact.
type ScorerPort interface {
	Score(g guild.Guild, artifact calibration.Artifact) (guild.Score, error)
}

// CalibrationPort runs the sampling pipeline that produces a fresh
// calibration artifact from the reference corpus.
type CalibrationPort interface {
	Run(seed int64, sampleSize, guildSizePair, guildSizeFull int) (calibration.Artifact, error)
}

// ExplanationPort renders a completed score into narrative cards and
// network summaries.
type ExplanationPort interface {
	Explain(s guild.Score, g guild.Guild) (explanation.Explanation, error)
}
