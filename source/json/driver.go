package json

import (
	"io"

	goshape "github.com/reoring/goshape"
)

// Driver returns a goshape.JSONDriver backed by encoding/json, for use with
// goshape.SetJSONDriver.
func Driver() goshape.JSONDriver { return driverStd{} }

type driverStd struct{}

func (driverStd) NewReader(r io.Reader) goshape.Source { return goshape.SourceFromEngine(NewReader(r)) }
func (driverStd) NewBytes(b []byte) goshape.Source     { return goshape.SourceFromEngine(NewBytes(b)) }
func (driverStd) Name() string                         { return "encoding/json" }
