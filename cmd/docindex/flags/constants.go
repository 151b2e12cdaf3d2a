package flags

const Verbose = `verbose`
const Quiet = `quiet`
const Plain = `plain`
const Output = `output`
const Config = `config`
const Exclude = `exclude`
const Order = `order`
const FollowSymlinks = `follow-symlinks`
const Headings = `headings`
const StripIds = `strip-ids`
const Stdout = `stdout`
const Check = `check`
const Tree = `tree`
const Watch = `watch`
