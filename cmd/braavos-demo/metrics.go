package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	accumulatorOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accumulator_operations",
			Help: "Incremented for each accumulator operation, labeled by kind and outcome.",
		},
		[]string{"kind", "success"},
	)
	accumulatorOpDur = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "accumulator_operation_duration",
			Help: "Summary of how long accumulator operations take to complete, in microseconds.",
		},
		[]string{"kind"},
	)
)

func metrics(addr string) {
	prometheus.MustRegister(accumulatorOps)
	prometheus.MustRegister(accumulatorOpDur)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/" {
			fmt.Fprintln(rw, "Hi, I'm a braavos metrics and debugging server!")
		} else {
			rw.WriteHeader(404)
			fmt.Fprintln(rw, "404 not found")
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	log.Printf("Starting metrics server at: %v", addr)
	log.Fatal(srv.ListenAndServe())
}
