package log

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger

	traceWriter io.Writer = ioutil.Discard
)

func init() {
	Init(ioutil.Discard, os.Stdout, os.Stdout, os.Stderr)
}

// Init sets the destinations of all the loggers
func Init(
	traceHandle io.Writer,
	infoHandle io.Writer,
	warningHandle io.Writer,
	errorHandle io.Writer) {

	traceWriter = traceHandle

	Trace = log.New(traceHandle,
		"TRACE: ",
		log.Ldate|log.Ltime|log.Lshortfile)

	Info = log.New(infoHandle,
		"INFO: ",
		log.Ldate|log.Ltime|log.Lshortfile)

	Warning = log.New(warningHandle,
		"WARNING: ",
		log.Ldate|log.Ltime|log.Lshortfile)

	Error = log.New(errorHandle,
		"ERROR: ",
		log.Ldate|log.Ltime|log.Lshortfile)
}

// InitLog enables tracing when SKETCHSET_TRACE=1
func InitLog() {
	if os.Getenv("SKETCHSET_TRACE") == "1" {
		EnableTrace(os.Stdout)
		return
	}
	Init(ioutil.Discard, os.Stdout, os.Stdout, os.Stderr)
}

// EnableTrace sends trace output to w
func EnableTrace(w io.Writer) {
	Init(w, os.Stdout, os.Stdout, os.Stderr)
}

// TraceEnabled reports whether trace output goes anywhere
func TraceEnabled() bool {
	return traceWriter != ioutil.Discard
}

// TraceWriter is the destination of the trace logger
func TraceWriter() io.Writer {
	return traceWriter
}
