package trie

import "github.com/katalvlaran/npuzzle/puzzle"

// Trie is a flat, indexable pruning automaton. Node 0 is the initial
// state. Node indices are stable handles: once assigned, a node never
// moves, so callers may cache a state across calls.
type Trie struct {
	nodes []Node
}

// New returns a Trie containing only the initial state.
func New() *Trie {
	return &Trie{nodes: []Node{rootNode()}}
}

// Len returns the number of nodes, including the root.
func (t *Trie) Len() int { return len(t.nodes) }

// NodeAt returns the raw transition table for node index i, for
// callers that need to walk the whole structure (automatonfile's
// encoder). The returned Node is a value copy.
func (t *Trie) NodeAt(i int) Node { return t.nodes[i] }

// FromNodes rebuilds a Trie directly from a decoded node table,
// bypassing AddWord/UpdateFailure entirely. Used by automatonfile's
// decoder to restore a previously-encoded automaton verbatim.
func FromNodes(nodes []Node) *Trie {
	return &Trie{nodes: nodes}
}

// AllRedundant reports whether every transition out of state is
// Redundant, meaning the state is reachable but useless — such a node
// should never occur in a correctly built automaton.
func (t *Trie) AllRedundant(state int) bool {
	for _, tr := range t.nodes[state] {
		if tr.Kind != KindRedundant {
			return false
		}
	}
	return true
}

// CheckIntegrity panics if any node has become an all-Redundant dead
// state, a builder invariant violation.
func (t *Trie) CheckIntegrity() {
	for s := range t.nodes {
		if t.AllRedundant(s) {
			panic("trie: node has become all-redundant")
		}
	}
}

// changeState is the raw table lookup, ignoring the Redundant
// short-circuit that ChangeTrueState applies.
func (t *Trie) changeState(state int, d puzzle.Direction) Transition {
	return t.nodes[state][d]
}

// ChangeTrueState advances the automaton: from Redundant it stays
// Redundant; from Match(s) or Failure(s) it follows table[s][d].
func (t *Trie) ChangeTrueState(current Transition, d puzzle.Direction) Transition {
	if current.Kind == KindRedundant {
		return Redundant
	}
	return t.changeState(current.Next, d)
}

// MatchWordNoFailure walks word from the root, stopping at the first
// Failure transition encountered (returning it immediately rather
// than following it) or the first Redundant transition (returned
// immediately). Used internally by greatestMatch, which needs to know
// exactly where following-without-failure runs out.
func (t *Trie) MatchWordNoFailure(word []puzzle.Direction) Transition {
	state := 0
	for _, d := range word {
		tr := t.changeState(state, d)
		switch tr.Kind {
		case KindRedundant:
			return Redundant
		case KindFailure:
			return Failure(tr.Next)
		case KindMatch:
			state = tr.Next
		}
	}
	return Match(state)
}

// MatchWord walks word from the root, following Failure links as
// ordinary transitions (rather than stopping at them) and
// short-circuiting on Redundant. This is the whole-word form of the
// step-by-step ChangeTrueState walk idastar performs, and the query the
// builder's test oracle uses to decide whether a move sequence is a
// canonical duplicate.
func (t *Trie) MatchWord(word []puzzle.Direction) Transition {
	state := 0
	for _, d := range word {
		tr := t.changeState(state, d)
		switch tr.Kind {
		case KindRedundant:
			return Redundant
		default:
			state = tr.Next
		}
	}
	return Match(state)
}

// greatestMatch finds, among every suffix of path (longest first), the
// one that is a genuine prefix of some inserted word, returning the
// state reached as a Failure transition; Redundant short-circuits;
// Failure(0) means no suffix (including the empty one) matches
// anything, i.e. fall back to the root.
func (t *Trie) greatestMatch(path []puzzle.Direction) Transition {
	for j := 0; j < len(path); j++ {
		switch tr := t.MatchWordNoFailure(path[j:]); tr.Kind {
		case KindFailure:
			continue
		case KindMatch:
			return Failure(tr.Next)
		case KindRedundant:
			return Redundant
		}
	}
	return Failure(0)
}

// AddWord extends the trie so that word reaches Redundant, returning
// false without modifying anything if word's insertion point is
// already Redundant (a no-op, not an error — the automaton already
// prunes this sequence via some shorter previously-added word).
func (t *Trie) AddWord(word []puzzle.Direction) bool {
	if len(word) == 0 {
		return false
	}
	if t.greatestMatch(word).Kind == KindRedundant {
		return false
	}
	t.addWordAux(0, word, 0)
	return true
}

func (t *Trie) addWordAux(state int, word []puzzle.Direction, i int) {
	if i >= len(word) {
		return
	}
	letter := word[i]
	switch tr := t.nodes[state][letter]; tr.Kind {
	case KindMatch:
		if i == len(word)-1 {
			t.nodes[state][letter] = Redundant
			return
		}
		t.addWordAux(tr.Next, word, i+1)
	case KindFailure:
		t.newDown(state, letter, word, i)
	case KindRedundant:
		// already pruned via a shorter path; nothing to do.
	}
}

// newDown grows the trie with fresh nodes to accommodate word[i:],
// the first letter not yet represented as a Match chain from state.
func (t *Trie) newDown(state int, letter puzzle.Direction, word []puzzle.Direction, i int) {
	if i == len(word)-1 {
		t.nodes[state][letter] = Redundant
		return
	}
	t.nodes[state][letter] = Match(len(t.nodes))

	for j := i + 1; j < len(word); j++ {
		node := rootNode()
		l := word[j]
		if j == len(word)-1 {
			node[l] = Redundant
		} else {
			node[l] = Match(len(t.nodes) + 1)
		}
		t.nodes = append(t.nodes, node)
	}
}

// UpdateFailure completes the Aho-Corasick construction: every
// Failure(_) entry is replaced by the state reached by the longest
// proper suffix of the path leading to that edge which is itself a
// prefix of some inserted word, and every Match edge whose path ends
// in (or contains) an inserted redundant word becomes Redundant. Until
// this runs, Failure links are meaningless placeholders and the trie
// only matches exactly-inserted words starting at the root.
func (t *Trie) UpdateFailure() {
	t.updateFailureAux(0, nil)
}

func (t *Trie) updateFailureAux(state int, path []puzzle.Direction) {
	node := t.nodes[state]
	for i, tr := range node {
		d := puzzle.Direction(i)
		path = append(path, d)
		switch tr.Kind {
		case KindMatch:
			if t.greatestMatch(path[1:]).Kind == KindRedundant {
				// a proper suffix of this path is already redundant.
				t.nodes[state][i] = Redundant
				break
			}
			t.updateFailureAux(tr.Next, path)
			// transition unchanged: still Match(tr.Next).
		case KindFailure:
			t.nodes[state][i] = t.greatestMatch(path[1:])
		case KindRedundant:
			// absorbing; nothing to update.
		}
		path = path[:len(path)-1]
	}
}
