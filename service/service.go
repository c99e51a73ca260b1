package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/cbsinteractive/edl-changelist/changelist"
	api "github.com/cbsinteractive/edl-changelist/client/changelist"
	"github.com/cbsinteractive/edl-changelist/config"
	"github.com/cbsinteractive/edl-changelist/db"
	"github.com/cbsinteractive/edl-changelist/edl"
	"github.com/cbsinteractive/edl-changelist/service/exceptions"
	"github.com/cbsinteractive/edl-changelist/source"
	"github.com/sirupsen/logrus"
	"github.com/zsiec/pkg/tracing"
)

var ErrFetch = errors.New("fetch error")
var ErrStorage = errors.New("storage error")

type Server struct {
	Config      *config.Config
	DB          db.Repository
	logger      *logrus.Logger
	errReporter exceptions.Reporter
	tracer      tracing.Tracer

	request
}

// NewChangelistService builds a Server from the loaded configuration,
// connecting cut storage and the exception reporter it calls for.
func NewChangelistService(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	if logger == nil {
		logger = logrus.New()
	}
	repo, err := db.NewClient(&db.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	if err != nil {
		return nil, fmt.Errorf("connecting cut storage: %w", err)
	}
	reporter, err := exceptions.New(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("initializing exception reporter: %w", err)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.NoopTracer{}
	}
	return &Server{
		Config:      cfg,
		DB:          repo,
		logger:      logger,
		errReporter: reporter,
		tracer:      tracer,
	}, nil
}

func (s Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.request = newRequest(rw, r)
	defer s.request.finalize()
	s.serve()
}

func (s *Server) serve() bool {
	switch s.chop() {
	case "changelists":
		if s.method() != "POST" {
			break
		}
		p := &api.CreateChangelistRequest{}
		if !s.request.UnmarshalJSON(p) {
			return false
		}
		if err := validateCompare(p); err != nil {
			return s.writeerror("create changelist failed", 400, err)
		}
		cl, err := s.compare0(p)
		if err != nil {
			return s.fail("create changelist failed", err)
		}
		return s.writebody(cl)
	case "programs":
		program := s.chop()
		if program == "" {
			break
		}
		switch s.chop() {
		case "cuts":
			rev := s.chop()
			switch s.method() {
			case "POST":
				if rev != "" {
					break
				}
				p := &api.PutCutRequest{}
				if !s.request.UnmarshalJSON(p) {
					return false
				}
				if err := validatePutCut(p); err != nil {
					return s.writeerror("put cut failed", 400, err)
				}
				cut, err := s.putCut0(program, p)
				if err != nil {
					return s.fail("put cut failed", err)
				}
				return s.writebody(cut)
			case "GET":
				if rev == "" {
					list, err := s.listCuts0(program)
					if err != nil {
						return s.fail("list cuts failed", err)
					}
					return s.writebody(list)
				}
				cut, err := s.getCut0(program, rev)
				if err != nil {
					return s.fail("get cut failed", err)
				}
				return s.writebody(cut)
			case "DELETE":
				if rev == "" {
					break
				}
				cut, err := s.delCut0(program, rev)
				if err != nil {
					return s.fail("del cut failed", err)
				}
				return s.writebody(cut)
			}
		case "changelist":
			if s.method() != "GET" {
				break
			}
			cl, err := s.changelist0(program, s.query("from"), s.query("to"))
			if err != nil {
				return s.fail("get changelist failed", err)
			}
			return s.writebody(cl)
		}
	}
	s.writeerror("bad request path", 400, nil)
	return false
}

// events0 turns one cut source into parsed events, fetching the EDL
// text first when it is not inline.
func (s *Server) events0(src api.CutSource, fps int) ([]edl.Event, error) {
	text := src.Text
	if text == "" {
		b, err := source.Fetch(s.request.ctx, src.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		text = string(b)
	}
	return edl.Parse(text, fps)
}

func (s *Server) compare0(p *api.CreateChangelistRequest) (cl api.Changelist, err error) {
	defer s.trace(s.request.ctx, "compare-cuts", &err)()

	fps, err := s.fps(p.FPS)
	if err != nil {
		return api.Changelist{}, err
	}
	oldEvents, err := s.events0(p.Old, fps)
	if err != nil {
		return api.Changelist{}, fmt.Errorf("old cut: %w", err)
	}
	newEvents, err := s.events0(p.New, fps)
	if err != nil {
		return api.Changelist{}, fmt.Errorf("new cut: %w", err)
	}
	return changelistDTO(changelist.Compare(oldEvents, newEvents, fps), fps)
}

// putCut0 stores a new cut revision and diffs it against the revision
// stored just before it. The first cut of a program, and a cut stored
// at a different rate than the previous one, come back without a
// changelist.
func (s *Server) putCut0(program string, p *api.PutCutRequest) (c api.PutCutResponse, err error) {
	defer s.trace(s.request.ctx, "put-cut", &err)()

	fps, err := s.fps(p.FPS)
	if err != nil {
		return api.PutCutResponse{}, err
	}
	events, err := s.events0(p.Cut, fps)
	if err != nil {
		return api.PutCutResponse{}, err
	}
	prev, err := s.latestCut(program)
	if err != nil {
		return api.PutCutResponse{}, err
	}
	cut := db.Cut{
		Program:  program,
		Revision: string(p.Revision),
		Rate:     db.Rate(fps),
		Events:   events,
	}
	if cut.Revision == "" {
		cut.Revision = genID()
	}
	if err := s.DB.SaveCut(&cut); err != nil {
		return api.PutCutResponse{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	resp := api.PutCutResponse{Cut: cutDTO(cut)}
	if prev != nil {
		if prevFPS, err := prev.FPS(); err == nil && prevFPS == fps {
			cl, err := changelistDTO(changelist.Compare(prev.Events, cut.Events, fps), fps)
			if err != nil {
				return api.PutCutResponse{}, err
			}
			cl.Program = api.Program(program)
			cl.From = api.Revision(prev.Revision)
			cl.To = api.Revision(cut.Revision)
			resp.Changelist = &cl
		}
	}
	return resp, nil
}

// latestCut loads the most recently stored revision of a program, or
// nil when there are none.
func (s *Server) latestCut(program string) (*db.Cut, error) {
	revs, err := s.DB.Revisions(program)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(revs) == 0 {
		return nil, nil
	}
	cut, err := s.DB.LoadCut(program, revs[len(revs)-1])
	if err != nil {
		return nil, storageErr(err)
	}
	return &cut, nil
}

func (s *Server) getCut0(program, revision string) (api.Cut, error) {
	cut, err := s.DB.LoadCut(program, revision)
	if err != nil {
		return api.Cut{}, storageErr(err)
	}
	return cutDTO(cut), nil
}

func (s *Server) delCut0(program, revision string) (c api.Cut, err error) {
	defer s.trace(s.request.ctx, "delete-cut", &err)()

	cut, err := s.DB.LoadCut(program, revision)
	if err != nil {
		return api.Cut{}, storageErr(err)
	}
	if err := s.DB.DeleteCut(program, revision); err != nil {
		return api.Cut{}, storageErr(err)
	}
	return cutDTO(cut), nil
}

func (s *Server) listCuts0(program string) (api.CutList, error) {
	revs, err := s.DB.Revisions(program)
	if err != nil {
		return api.CutList{}, storageErr(err)
	}
	list := api.CutList{
		Program:   api.Program(program),
		Revisions: make([]api.Revision, len(revs)),
	}
	for i, r := range revs {
		list.Revisions[i] = api.Revision(r)
	}
	return list, nil
}

// changelist0 compares two stored revisions of a program. An empty to
// means the latest revision; an empty from means the revision stored
// right before to. The first revision of a program has no predecessor
// and is compared against an empty timeline, so every event comes
// back as New.
func (s *Server) changelist0(program, from, to string) (cl api.Changelist, err error) {
	defer s.trace(s.request.ctx, "program-changelist", &err)()

	if from == "" || to == "" {
		revs, err := s.DB.Revisions(program)
		if err != nil {
			return api.Changelist{}, storageErr(err)
		}
		if to == "" {
			if len(revs) == 0 {
				return api.Changelist{}, db.ErrCutNotFound
			}
			to = revs[len(revs)-1]
		}
		if from == "" {
			from = predecessor(revs, to)
		}
	}

	toCut, err := s.DB.LoadCut(program, to)
	if err != nil {
		return api.Changelist{}, storageErr(err)
	}
	fps, err := toCut.FPS()
	if err != nil {
		return api.Changelist{}, err
	}

	var oldEvents []edl.Event
	if from != "" {
		fromCut, err := s.DB.LoadCut(program, from)
		if err != nil {
			return api.Changelist{}, storageErr(err)
		}
		fromFPS, err := fromCut.FPS()
		if err != nil {
			return api.Changelist{}, err
		}
		if fromFPS != fps {
			return api.Changelist{}, fmt.Errorf("cut rates differ: %s is %d fps, %s is %d fps", from, fromFPS, to, fps)
		}
		oldEvents = fromCut.Events
	}

	cl, err = changelistDTO(changelist.Compare(oldEvents, toCut.Events, fps), fps)
	if err != nil {
		return api.Changelist{}, err
	}
	cl.Program = api.Program(program)
	cl.From = api.Revision(from)
	cl.To = api.Revision(to)
	return cl, nil
}

// predecessor returns the revision stored immediately before rev, or
// "" when rev is the oldest or unknown.
func predecessor(revs []string, rev string) string {
	for i, r := range revs {
		if r == rev && i > 0 {
			return revs[i-1]
		}
	}
	return ""
}

func (s *Server) fps(requested int) (int, error) {
	if requested == 0 {
		requested = s.Config.DefaultFPS
	}
	if requested <= 0 {
		return 0, fmt.Errorf("invalid frame rate %d", requested)
	}
	return requested, nil
}

func (s *Server) fail(msg string, err error) bool {
	code := errcode(err)
	if code >= 500 {
		s.logger.WithError(err).Error(msg)
		s.errReporter.ReportException(err)
	}
	return s.writeerror(msg, code, err)
}

func errcode(err error) int {
	switch {
	case errors.Is(err, db.ErrCutNotFound):
		return 404
	case errors.Is(err, ErrStorage), errors.Is(err, ErrFetch):
		return 500
	}
	return 400
}

func storageErr(err error) error {
	if errors.Is(err, db.ErrCutNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

func (s *Server) trace(ctx context.Context, name string, err *error) func() {
	x := s.tracer.BeginSubsegment(ctx, name)
	return func() {
		if err == nil {
			x.Close(nil)
		} else {
			x.Close(*err)
		}
	}
}

func (s *Server) method() string {
	return s.request.r.Method
}

// PlatformError implements a well-known error response for http clients
// encountering an error when using the service.
type PlatformError struct {
	Ok     bool   `json:"ok"`
	Status int    `json:"status"`
	Rid    uint64 `json:"rid"`
	Msg    string `json:"msg,omitempty"`
}

// String returns the json-formatted platform response
func (p PlatformError) String() string {
	data, _ := json.Marshal(p)
	return string(data)
}

func logkv(kv ...interface{}) bool {
	msg := `{`
	sep := " "
	for i := 0; i+1 < len(kv); i += 2 {
		v := kv[i+1]
		if v == nil {
			v = ""
		} else {
			switch v.(type) {
			case fmt.Stringer:
				v = fmt.Sprint(v)
			case error:
				v = fmt.Sprint(v)
			}
		}
		value, _ := json.Marshal(v)
		msg += fmt.Sprintf(`%s%q:%s`, sep, kv[i], string(value))
		sep = ", "
	}
	msg += `}`
	log.Println(msg)
	return true
}
