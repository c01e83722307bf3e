package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/renewables/core/metrics"
	"github.com/kilianp07/renewables/infra/logger"
)

// InfluxSink writes projections to InfluxDB.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given endpoint. A trailing
// /api/v2/write on url is ignored.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback checks the instance health and returns a NopSink
// when it is unreachable.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.ProjectionSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordProjection writes one forecast_point per projected year.
func (s *InfluxSink) RecordProjection(ev coremetrics.ProjectionEvent) error {
	if len(ev.Points) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, projectionPoints(ev)...)
}

// RecordSnapshot writes the historical aggregates of the selected year.
func (s *InfluxSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, snapshotPoint(ev))
}

// Close releases the client.
func (s *InfluxSink) Close() { s.client.Close() }

func projectionPoints(ev coremetrics.ProjectionEvent) []*write.Point {
	pts := make([]*write.Point, 0, len(ev.Points))
	for _, p := range ev.Points {
		pts = append(pts, write.NewPointWithMeasurement("forecast_point").
			AddTag("scenario", ev.Scenario.String()).
			AddTag("run_id", ev.RunID).
			AddTag("base_year", strconv.Itoa(ev.Year)).
			AddTag("year", strconv.Itoa(p.Year)).
			AddField("renewable_percentage", p.RenewablePercentage).
			AddField("co2_reduction", p.CO2Reduction).
			AddField("target", ev.Target).
			SetTime(ev.Time))
	}
	return pts
}

func snapshotPoint(ev coremetrics.SnapshotEvent) *write.Point {
	return write.NewPointWithMeasurement("historical_snapshot").
		AddTag("year", strconv.Itoa(ev.Year)).
		AddField("avg_renewable_percentage", ev.Summary.AvgRenewablePercentage).
		AddField("total_capacity_gw", ev.Summary.TotalCapacity).
		AddField("solar_capacity_gw", ev.Summary.SolarCapacity).
		AddField("wind_capacity_gw", ev.Summary.WindCapacity).
		AddField("hydro_capacity_gw", ev.Summary.HydroCapacity).
		AddField("co2_reduction", ev.Summary.TotalCO2Reduction).
		SetTime(ev.Time)
}
