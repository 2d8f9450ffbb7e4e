package control

import (
	"context"
	"net/http"
	"time"

	"github.com/core-tools/hsu-memwatch/pkg/errors"
	"github.com/core-tools/hsu-memwatch/pkg/logging"
	"github.com/core-tools/hsu-memwatch/pkg/supervision"

	"github.com/kolo/xmlrpc"
)

// stateRunning is the supervision service's RUNNING process state code
const stateRunning = 20

// SupervisorGatewayOptions configures the supervision service client
type SupervisorGatewayOptions struct {
	// URL is the XML-RPC endpoint, e.g. http://127.0.0.1:9001/RPC2
	URL string

	// RequestTimeout bounds every RPC round-trip so a hung supervisor
	// cannot block a tick forever
	RequestTimeout time.Duration
}

// processInfo mirrors one entry of the getAllProcessInfo response
type processInfo struct {
	Name      string `xmlrpc:"name"`
	Group     string `xmlrpc:"group"`
	Start     int64  `xmlrpc:"start"`
	Now       int64  `xmlrpc:"now"`
	State     int    `xmlrpc:"state"`
	Statename string `xmlrpc:"statename"`
	PID       int    `xmlrpc:"pid"`
}

type memoryUsageFunc func(pid int32) (int64, error)

type supervisorGateway struct {
	client      *xmlrpc.Client
	memoryUsage memoryUsageFunc
	logger      logging.Logger
}

// NewSupervisorGateway creates a supervision.Supervisor backed by the
// service's XML-RPC interface. The service reports process identity,
// state and timestamps; resident memory is read locally per PID since the
// RPC interface does not expose it.
func NewSupervisorGateway(options SupervisorGatewayOptions, logger logging.Logger) (supervision.Supervisor, error) {
	transport := &http.Transport{
		ResponseHeaderTimeout: options.RequestTimeout,
	}
	client, err := xmlrpc.NewClient(options.URL, transport)
	if err != nil {
		return nil, errors.NewTransportError("failed to create supervisor RPC client", err).WithContext("url", options.URL)
	}

	return &supervisorGateway{
		client:      client,
		memoryUsage: processResidentMemory,
		logger:      logger,
	}, nil
}

func (gw *supervisorGateway) ListAllProcesses(ctx context.Context) ([]supervision.ProcessSnapshot, error) {
	var infos []processInfo
	if err := gw.call(ctx, "supervisor.getAllProcessInfo", nil, &infos); err != nil {
		return nil, errors.NewTransportError("failed to fetch process roster", err)
	}

	snapshots := make([]supervision.ProcessSnapshot, 0, len(infos))
	for _, info := range infos {
		snapshots = append(snapshots, gw.toSnapshot(info))
	}

	gw.logger.Debugf("Fetched process roster, %d processes", len(snapshots))
	return snapshots, nil
}

// toSnapshot converts a process info entry into a snapshot, filling in the
// resident memory reading for running processes. A memory read failure
// zeroes the reading for that process only; the roster itself never fails
// because of one unreadable process.
func (gw *supervisorGateway) toSnapshot(info processInfo) supervision.ProcessSnapshot {
	snapshot := supervision.ProcessSnapshot{
		Name:       info.Name,
		Group:      info.Group,
		Running:    info.State == stateRunning,
		StartedAt:  time.Unix(info.Start, 0),
		ObservedAt: time.Unix(info.Now, 0),
	}

	if snapshot.Running && info.PID > 0 {
		rss, err := gw.memoryUsage(int32(info.PID))
		if err != nil {
			gw.logger.Warnf("Failed to read resident memory of process %s, pid: %d: %v", snapshot.ID(), info.PID, err)
		} else {
			snapshot.MemoryRSS = rss
		}
	}

	return snapshot
}

// RestartProcess stops and then starts the process. The stop must complete
// before the start is attempted; a fault in either call fails the restart.
func (gw *supervisorGateway) RestartProcess(ctx context.Context, id string) (bool, error) {
	var stopped bool
	if err := gw.call(ctx, "supervisor.stopProcess", id, &stopped); err != nil {
		return false, errors.NewProcessError("failed to stop process", err).WithContext("process", id)
	}

	var started bool
	if err := gw.call(ctx, "supervisor.startProcess", id, &started); err != nil {
		return false, errors.NewProcessError("failed to start process", err).WithContext("process", id)
	}

	gw.logger.Debugf("Restarted process %s, started: %t", id, started)
	return started, nil
}

// call performs one RPC. The underlying client has no context support, so
// cancellation is checked up front and the transport timeout bounds the
// round-trip itself.
func (gw *supervisorGateway) call(ctx context.Context, method string, args interface{}, reply interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return gw.client.Call(method, args, reply)
}
