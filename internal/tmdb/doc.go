// Package tmdb provides an HTTP client for The Movie Database v3 API.
//
// # Overview
//
// The client covers the read-only endpoints marquee browses:
//
//   - GET /trending/movie/week        FetchTrending
//   - GET /movie/top_rated            FetchTopRated
//   - GET /discover/movie             FetchByGenre
//   - GET /search/movie               SearchMovies
//   - GET /movie/{id}                 FetchMovie
//   - GET /movie/{id}/credits         FetchCredits
//
// Only the first page of a list is requested.
//
// # Authentication
//
// The api key is injected through Options at startup. A v3 key is sent as
// the api_key query parameter; a v4 read access token (a JWT) is sent as a
// bearer Authorization header instead. The key is redacted from transport
// error messages.
//
// # Errors
//
// Every failure is one of three types, each reporting its resource.Kind:
//
//   - *TransportError: the request never produced a response
//   - *HTTPError: a non-2xx status, with TMDB's status_message when present
//   - *ParseError: an undecodable body, or a payload missing a field the
//     screens depend on (results, id, title, cast, crew)
//
// A payload with a missing title is therefore a failure, never a movie
// with an empty title.
//
// # Usage
//
//	client, err := tmdb.NewClient(tmdb.Options{APIKey: cfg.APIKey})
//	if err != nil {
//		return err
//	}
//	movies, err := client.FetchTrending(ctx)
package tmdb
