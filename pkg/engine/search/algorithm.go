package search

import (
	"errors"
	"strings"

	"github.com/lintang-b-s/primplanner/pkg"
	"github.com/lintang-b-s/primplanner/pkg/costfunction"
	da "github.com/lintang-b-s/primplanner/pkg/datastructure"
	"go.uber.org/zap"
)

var (
	ErrNoSuchMotionPlanner = errors.New("no such motion planner")
)

type Algorithm uint8

const (
	AStar Algorithm = iota
	IDAStar
	DepthFirst
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case IDAStar:
		return "idastar"
	case DepthFirst:
		return "dfs"
	default:
		return "unknown"
	}
}

// Title is the name used in result reports.
func (a Algorithm) Title() string {
	switch a {
	case AStar:
		return "A*"
	case IDAStar:
		return "IDA*"
	case DepthFirst:
		return "DFS"
	default:
		return "unknown"
	}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a_star":
		return AStar, nil
	case "idastar", "ida*", "ida_star":
		return IDAStar, nil
	case "dfs", "depth_first":
		return DepthFirst, nil
	default:
		return 0, ErrNoSuchMotionPlanner
	}
}

// NewPlanner builds the planner for algorithm over the given problem instance.
func NewPlanner(algorithm Algorithm, initialState da.State, automaton Automaton, collision CollisionChecker,
	goal GoalChecker, evaluator *costfunction.Evaluator, log *zap.Logger, opts ...Option) (*Planner, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var policy FrontierPolicy
	switch algorithm {
	case AStar:
		policy = newAStarPolicy()
	case IDAStar:
		policy = newIDAStarPolicy()
	case DepthFirst:
		policy = newDepthFirstPolicy(options.MaxDepth)
	default:
		return nil, ErrNoSuchMotionPlanner
	}

	searcher := NewSearcher(initialState, automaton, collision, goal, evaluator, options.Observer)
	return &Planner{
		algorithm: algorithm,
		searcher:  searcher,
		policy:    policy,
		options:   options,
		log:       log,
	}, nil
}

type Options struct {
	// MaxNodes caps the number of expansion calls, 0 means unbounded.
	MaxNodes int
	// MaxBoundEscalations caps how often IDA* may raise its limit, 0 means unbounded.
	MaxBoundEscalations int
	MaxDepth            int
	Observer            Observer
}

func defaultOptions() Options {
	return Options{
		MaxDepth: pkg.DEFAULT_DFS_MAX_DEPTH,
		Observer: NopObserver(),
	}
}

type Option func(*Options)

func WithMaxNodes(n int) Option {
	return func(o *Options) {
		o.MaxNodes = n
	}
}

func WithMaxBoundEscalations(n int) Option {
	return func(o *Options) {
		o.MaxBoundEscalations = n
	}
}

func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxDepth = depth
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(o *Options) {
		if observer != nil {
			o.Observer = observer
		}
	}
}
