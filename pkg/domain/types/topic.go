package types

import "github.com/m-mizutani/goerr/v2"

type Topic string

const (
	TopicPrototype     Topic = "prototype"
	TopicLearning      Topic = "learning"
	TopicHackday       Topic = "hackday"
	TopicTesting       Topic = "testing"
	TopicDocumentation Topic = "documentation"
	TopicProduction    Topic = "production"
	TopicInteractive   Topic = "interactive"
)

// StatusTopics is the vocabulary a repository must pick exactly one from.
var StatusTopics = []Topic{
	TopicPrototype,
	TopicLearning,
	TopicHackday,
	TopicTesting,
	TopicDocumentation,
	TopicProduction,
	TopicInteractive,
}

type Stage string

const (
	StageProd Stage = "PROD"
	StageCode Stage = "CODE"
	StageDev  Stage = "DEV"
)

func (x Stage) String() string {
	return string(x)
}

func (x Stage) Validate() error {
	switch x {
	case StageProd, StageCode, StageDev:
		return nil
	}
	return goerr.Wrap(ErrInvalidOption, "invalid stage, should be PROD, CODE or DEV", goerr.V("stage", x))
}
