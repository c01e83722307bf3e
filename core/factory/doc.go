// Package factory instantiates pluggable modules from configuration. A
// module is described by a type name and a map of raw settings; the
// registered factory decodes the settings into its own struct.
//
//	reg := factory.NewRegistry[metrics.ProjectionSink]()
//	_ = reg.Register("influx", func(conf map[string]any) (metrics.ProjectionSink, error) {
//	    var c struct{ URL string `json:"url"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newInflux(c.URL), nil
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "influx", Conf: map[string]any{"url": "http://influx:8086"}})
package factory
