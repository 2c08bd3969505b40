// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodFeedback is the canonical name for the Feedback constructor.
	MethodFeedback = "Feedback"
	// MethodFeedforward is the canonical name for the Feedforward constructor.
	MethodFeedforward = "Feedforward"
	// MethodSelfLoop is the canonical name for the SelfLoop constructor.
	MethodSelfLoop = "SelfLoop"
	// MethodRandomFeedback is the canonical name for the RandomFeedback constructor.
	MethodRandomFeedback = "RandomFeedback"
	// MethodEdgeList is the canonical name for the EdgeList constructor.
	MethodEdgeList = "EdgeList"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinChainNodes is the smallest meaningful size for a chain: one input and
// one output stage joined by a single branch.
const MinChainNodes = 2

//-----------------------------------------------------------------------------
// Gain Defaults
//-----------------------------------------------------------------------------

// DefaultGainPrefix names chain gains "g1", "g2", … when no GainFn is set.
const DefaultGainPrefix = "g"

// RandomFeedbackPrefix names the gains of RandomFeedback edges "h1", "h2", ….
const RandomFeedbackPrefix = "h"
