package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"timeline-service/configs"
	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/kafka"
	"timeline-service/internal/migrate"
	"timeline-service/internal/notification"
	"timeline-service/internal/post"
	"timeline-service/internal/postdetail"
	"timeline-service/internal/ratelimit"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/shared/httpx"
	"timeline-service/internal/shared/redisx"
	"timeline-service/internal/timeline"
	"timeline-service/internal/user"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	svcName := os.Getenv("OTEL_SERVICE_NAME")
	if svcName == "" {
		svcName = "timeline-service"
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(svcName),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()
	store := db.OpenFromEnv(cfg.DSN())

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb := redisx.Open(cfg.RedisHost, cfg.RedisPort)

	kWriter, err := kafka.NewWriter(cfg.KafkaBootstrap, cfg.KafkaTopic)
	if err != nil {
		log.Fatalf("kafka writer: %v", err)
	}
	defer kWriter.Close()

	userRepo := user.NewRepository(store)
	postRepo := post.NewRepository(store)
	commentRepo := comment.NewRepository(store)
	reactionRepo := reaction.NewRepository(store)
	cookedRepo := cooked.NewRepository(store)

	reactionSvc := reaction.NewService(reactionRepo, kWriter)
	commentSvc := comment.NewService(commentRepo, reactionSvc, postRepo, kWriter)
	cookedSvc := cooked.NewService(cookedRepo, postRepo, kWriter)
	postSvc := post.NewService(postRepo, kWriter)
	detailSvc := postdetail.NewService(postRepo, commentSvc, cookedSvc, reactionSvc)
	timelineSvc := timeline.NewService(postRepo, commentRepo, reactionRepo, cookedRepo)

	notifRepo := notification.NewRedisRepository(rdb)
	notifSvc := notification.NewService(notifRepo)
	fanout := notification.NewFanout(notifSvc, userRepo)

	consumer := kafka.NewConsumer(cfg.KafkaBootstrap, cfg.KafkaGroupID, cfg.KafkaTopic, fanout.Handle)
	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Printf("kafka consumer stopped: %v", err)
		}
	}()

	limiter := ratelimit.New(rdb)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	th := timeline.NewHandler(timelineSvc)
	mux.Handle("GET /timeline", limiter.LimitHTTP(120, time.Minute, httpx.FamilyFromRequest, httpx.Wrap(th.Get)))

	ph := post.NewHandler(postSvc)
	mux.Handle("POST /posts", httpx.Wrap(ph.Create))
	mux.Handle("PATCH /posts/{post_id}", httpx.Wrap(ph.Edit))

	dh := postdetail.NewHandler(detailSvc)
	mux.Handle("GET /posts/{post_id}", httpx.Wrap(dh.GetByID))

	ch := comment.NewHandler(commentSvc)
	mux.Handle("GET /posts/{post_id}/comments", httpx.Wrap(ch.ListByPost))
	mux.Handle("POST /posts/{post_id}/comments", httpx.Wrap(ch.Create))

	kh := cooked.NewHandler(cookedSvc)
	mux.Handle("GET /posts/{post_id}/cooked", httpx.Wrap(kh.ListByPost))
	mux.Handle("POST /posts/{post_id}/cooked", httpx.Wrap(kh.Create))

	rh := reaction.NewHandler(reactionSvc)
	mux.Handle("POST /reactions", httpx.Wrap(rh.Toggle))

	nh := notification.NewHandler(notifSvc)
	mux.Handle("GET /notifications", httpx.Wrap(nh.List))
	mux.Handle("POST /notifications/{notif_id}/read", httpx.Wrap(nh.MarkRead))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(c)
	}()

	log.Printf("timeline-service listening on %s", cfg.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
