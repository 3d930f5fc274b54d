package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"github.com/dogecoinfoundation/gigabase58/pkg/conductor"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// WebAPI implements conductor.Service
type WebAPI struct {
	api    giga.API
	config giga.Config
	log    *zap.Logger
}

// interface guard ensures WebAPI implements conductor.Service
var _ conductor.Service = WebAPI{}

func NewWebAPI(config giga.Config, api giga.API, log *zap.Logger) (WebAPI, error) {
	if config.WebAPI.QRSize <= 0 {
		return WebAPI{}, giga.NewErr(giga.BadRequest, "WebAPI.QRSize must be positive, got %d", config.WebAPI.QRSize)
	}
	return WebAPI{api: api, config: config, log: log.Named("webapi")}, nil
}

// Run binds the listen address before reporting started, so a busy port
// or bad bind address fails the service instead of leaving it half up.
func (t WebAPI) Run(started, stopped chan bool, stop chan context.Context) error {
	addr := net.JoinHostPort(t.config.WebAPI.Bind, t.config.WebAPI.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	server := &http.Server{Handler: t.logRequests(t.createRouter()), ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		t.log.Info("listening", zap.Stringer("addr", listener.Addr()))
		if err := server.Serve(listener); err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	go func() {
		started <- true
		select {
		case ctx := <-stop:
			if err := server.Shutdown(ctx); err != nil {
				t.log.Warn("shutdown", zap.Error(err))
			}
		case err := <-errCh:
			t.log.Error("HTTP server Serve", zap.Error(err))
			<-stop
		}
		stopped <- true
	}()
	return nil
}

func (t WebAPI) createRouter() *httprouter.Router {
	mux := httprouter.New()

	// POST { hex, alphabet?, check?, version? } /encode -> { text }
	mux.POST("/encode", t.encode)

	// POST { text, alphabet?, check?, version? } /decode -> { hex }
	mux.POST("/decode", t.decode)

	// GET /qr/:text?alphabet=&check=&version=&size= -> image/png of a valid base58 string
	mux.GET("/qr/:text", t.getQR)

	// GET /address/:chain/:key -> { address, chain } P2PKH address of a hex pubkey, WIF or BIP32 key
	mux.GET("/address/:chain/:key", t.getAddress)

	// GET /script/:chain/:hex -> { type, address?, chain } classify a ScriptPubKey
	mux.GET("/script/:chain/:hex", t.getScript)

	return mux
}

func (t WebAPI) encode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var o giga.EncodeRequest
	err := json.NewDecoder(r.Body).Decode(&o)
	if err != nil {
		t.sendBadRequest(w, fmt.Sprintf("bad request body (expecting JSON): %v", err))
		return
	}
	res, err := t.api.Encode(o)
	if err != nil {
		t.sendError(w, "Encode", err)
		return
	}
	sendResponse(w, res)
}

func (t WebAPI) decode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var o giga.DecodeRequest
	err := json.NewDecoder(r.Body).Decode(&o)
	if err != nil {
		t.sendBadRequest(w, fmt.Sprintf("bad request body (expecting JSON): %v", err))
		return
	}
	res, err := t.api.Decode(o)
	if err != nil {
		t.sendError(w, "Decode", err)
		return
	}
	sendResponse(w, res)
}

func (t WebAPI) getQR(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	text := p.ByName("text")
	qs := r.URL.Query()
	opts := giga.CodecOptions{Alphabet: qs.Get("alphabet"), Check: qs.Get("check")}
	if v := qs.Get("version"); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil {
			t.sendBadRequest(w, "invalid version in URL")
			return
		}
		opts.Version = &version
	}
	size := t.config.WebAPI.QRSize
	if s := qs.Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 64 || n > 2048 {
			t.sendBadRequest(w, "invalid size in URL (64 to 2048)")
			return
		}
		size = n
	}
	// only valid base58 (with a good checksum, if asked for) gets a QR code
	if _, err := t.api.Decode(giga.DecodeRequest{Text: text, CodecOptions: opts}); err != nil {
		t.sendError(w, "Decode", err)
		return
	}
	qr, err := GenerateQRCodePNG(text, size)
	if err != nil {
		t.sendError(w, "GenerateQRCodePNG", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	// the image depends only on the URL
	w.Header().Set("Cache-Control", "max-age=900, immutable")
	w.Write(qr)
}

func (t WebAPI) getAddress(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := t.api.KeyAddress(p.ByName("chain"), p.ByName("key"))
	if err != nil {
		t.sendError(w, "KeyAddress", err)
		return
	}
	sendResponse(w, res)
}

func (t WebAPI) getScript(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := t.api.ScriptAddress(p.ByName("chain"), p.ByName("hex"))
	if err != nil {
		t.sendError(w, "ScriptAddress", err)
		return
	}
	sendResponse(w, res)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (t WebAPI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		t.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
