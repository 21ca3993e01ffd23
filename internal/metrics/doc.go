/*
Package metrics records rdsctl invocation statistics with Prometheus.

A Collector owns a private registry and implements adapter.Recorder:

	rdsctl_invocations_total{operation,outcome}       outcome is result, metadata, error or refused
	rdsctl_invocation_duration_seconds{operation}     histogram, 10ms to ~20s
	rdsctl_pages_total{operation}                     pages fetched by list operations
	rdsctl_items_total{operation}                     items returned by list operations
	rdsctl_errors_total{operation,type}               type is the error category

rdsctl is a short-lived process, so the registry is not served over HTTP.
WriteTextfile dumps it in the text exposition format for node_exporter's
textfile collector:

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return err
	}
	runner := adapter.NewRunner(clients, adapter.WithRecorder(collector))
	// ...
	return collector.WriteTextfile("/var/lib/node_exporter/rdsctl.prom")

A disabled collector (Config.Enabled false) accepts every call and records
nothing.
*/
package metrics
