// SPDX-License-Identifier: EPL-2.0

// Package trigger is the keyword spotting protocol between dialog
// managers and spotting engines.
//
// An engine implements KeywordSpotter and works on a stream that is
// already open. Dialog managers usually hold a Service instead, which
// opens the stream itself from a DialogContext:
//
//	svc := trigger.Adapt(engine, trigger.WithLogger(log))
//	h, err := svc.Spot(listener, trigger.DialogContext{
//	    Source:  mic,
//	    Locale:  language.English,
//	    Keyword: "computer",
//	})
//	if err != nil {
//	    // trigger.KindOf(err) tells why
//	}
//	defer h.Abort()
//
// # Sessions
//
// Spot returns as soon as the engine accepted the session. Events arrive
// on the listener from the engine's goroutine: a TriggeredEvent for each
// detection, an ErrorEvent for failures after start. Once the handle is
// aborted no further events are delivered, even if the engine emits late.
//
// Abort may be called any number of times from any goroutine, including
// from within the listener.
//
// # Engines
//
// Engines validate their inputs with CheckSpot and may run detection with
// Start, which owns the goroutine and its cancellation:
//
//	func (e *engine) SpotStream(l trigger.Listener, s audio.Stream, loc language.Tag, kw string) (trigger.Handle, error) {
//	    if err := trigger.CheckSpot(e, s, loc, kw); err != nil {
//	        return nil, err
//	    }
//	    return trigger.Start(context.Background(), l, func(ctx context.Context, emit func(trigger.Event)) {
//	        // read s until ctx is done
//	    }), nil
//	}
package trigger
