/*
Package espresso hands covers to the Espresso logic minimizer.

The minimizer itself is an external C library. It is reached through a single
synchronous call taking a cover and a cover type, and returning a new cover
whose cells were allocated by the library:

	typedef struct { int ncubes; int ninputs; int noutput; int *data; } net_cover_t;
	net_cover_t espressonet(net_cover_t cover, int intype);
	void espressonet_free(int *data);

The library keeps its state in global variables, so every call into it, from
any goroutine, is serialized by a package-level lock.

Minimizing a cover

	m := espresso.New(engine)
	res, err := m.Minimize(ctx, c, cover.FD)
	if err != nil {
		return err
	}
	defer res.Release()

The returned *LibCover reads and writes memory owned by the library. It must be
released exactly once; a second Release, or any access after Release, returns
ErrReleased. Use cover.Clone to keep a copy that outlives the release.

The native engine is only compiled in when building with cgo and the espresso
build tag, and linking against libespresso:

	go build -tags espresso ./...

Without it, NativeEngine returns ErrNoNative and any Engine implementation can
be given to New instead.
*/
package espresso
