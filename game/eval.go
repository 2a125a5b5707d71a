package game

// Weights of the two evaluators. Material dominates every other term: the
// positional part of a score is clamped to positionalLimit, so one wolf more
// or less always outweighs any difference in position.
const (
	materialWeight  = 1000
	positionalLimit = materialWeight/2 - 1

	exposedWolfPenalty = 400
	extraExposedCost   = 25
	cohesionWeight     = 10
	adjacencyBonus     = 15
	hunterStepPenalty  = 5
	hunterShotPenalty  = 10
	trappedHunterBonus = 300

	captureBonus      = 150
	extraShotBonus    = 20
	stepBonus         = 10
	crowdedPenalty    = 60
	surroundedPenalty = 200
	trappedHunterCost = 300
	wolfSpreadWeight  = 2
)

// EvaluatorFor returns the scoring strategy tuned for role.
func EvaluatorFor(role Role) Evaluate {
	if role == HunterRole {
		return EvaluateHunters
	}
	return EvaluateWolves
}

// features is everything both evaluators need, gathered in one pass over the
// hunters.
type features struct {
	wolves, hunters []Position
	exposed         int // wolves a hunter can take next turn
	steps, shots    int // hunter steps and captures available
	trapped         int // hunters without any move
	crowded         int // hunters with exactly two wolf neighbours
	surrounded      int // hunters with three or more wolf neighbours
	adjacency       int // wolf-hunter neighbour pairs
	spread          int // total wolf distance to the centre
}

func extract(b Board) features {
	f := features{
		wolves:  b.Positions(Wolf),
		hunters: b.Positions(Hunter),
	}
	var exposed [Cells]bool
	for _, h := range f.hunters {
		steps := len(AdjacentEmpty(b, h))
		shots := PossibleCaptures(b, h)
		for _, t := range shots {
			exposed[t] = true
		}
		f.steps += steps
		f.shots += len(shots)
		if steps == 0 && len(shots) == 0 {
			f.trapped++
		}

		wolfNeighbours := 0
		for _, w := range f.wolves {
			if IsAdjacent(w, h) {
				wolfNeighbours++
			}
		}
		f.adjacency += wolfNeighbours
		switch {
		case wolfNeighbours >= 3:
			f.surrounded++
		case wolfNeighbours == 2:
			f.crowded++
		}
	}
	for _, w := range f.wolves {
		if exposed[w] {
			f.exposed++
		}
		f.spread += DistanceToCenter(w)
	}
	return f
}

// tapered charges full for the first occurrence and extra for each further
// one. Only one wolf can fall per turn, so the rest matter less.
func tapered(n, full, extra int) int {
	if n == 0 {
		return 0
	}
	return full + (n-1)*extra
}

func clampPositional(score int) int {
	return min(max(score, -positionalLimit), positionalLimit)
}

// EvaluateWolves scores b for the wolves: survive, stay out of capture lines,
// mass towards the centre and close in on the hunters.
func EvaluateWolves(b Board) int {
	f := extract(b)
	pos := -tapered(f.exposed, exposedWolfPenalty, extraExposedCost)
	pos -= f.spread * cohesionWeight
	pos += f.adjacency * adjacencyBonus
	pos -= f.steps*hunterStepPenalty + f.shots*hunterShotPenalty
	pos += f.trapped * trappedHunterBonus
	return len(f.wolves)*materialWeight + clampPositional(pos)
}

// EvaluateHunters scores b for the hunters: thin the pack, keep shots and
// room to move, and stay clear of wolf clusters.
func EvaluateHunters(b Board) int {
	f := extract(b)
	pos := tapered(f.shots, captureBonus, extraShotBonus)
	pos += f.steps * stepBonus
	pos -= f.crowded*crowdedPenalty + f.surrounded*surroundedPenalty
	pos -= f.trapped * trappedHunterCost
	pos += f.spread * wolfSpreadWeight
	return (InitialWolves-len(f.wolves))*materialWeight + clampPositional(pos)
}
