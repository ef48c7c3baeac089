package errs

import "errors"

var (
	ErrNoRepository  = errors.New("no Git or Mercurial repository was found here or in any parent directory")
	ErrUnknownAction = errors.New("unknown VCS action. Supported actions are 'commit' and 'browse'")
)
