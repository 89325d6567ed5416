/*
Package smx reads and writes SMX containers, a compact binary format that
packages a set of named, opaque byte blobs (sections) into a single file.
The payload (the concatenated section bytes) may be zlib-compressed as one
unit. Byte order is chosen when writing and inferred from the magic number
when reading.

Data Structure Documentation

File

A file contains a fixed header, a section-info table, a string table and
the payload. All multi-byte integers use the byte order of the file.

    File layout:
    +--------+-------------------+--------------+------------------------+
    | header | section-info  x N | string table | payload (maybe zlib'd) |
    +--------+-------------------+--------------+------------------------+

    Header (24 bytes):
    +-----------+-------------+-----------------+---------------+----------------+
    | magic (4) | version (2) | compression (1) | disk size (4) | image size (4) |
    +-----------+-------------+-----------------+---------------+----------------+

    +-------------------+-------------------------+--------------------+
    | section count (1) | string table offset (4) | payload offset (4) |
    +-------------------+-------------------------+--------------------+

    Section info (12 bytes):
    +-----------------+-----------------+------------+
    | name offset (4) | data offset (4) | length (4) |
    +-----------------+-----------------+------------+

String Table

The string table is a sequence of NUL-terminated section names. Identical
names are stored once. Name offsets are relative to the start of the table.

Payload

Data offsets are absolute and refer to the decompressed image: the file as
it would look if the payload were stored uncompressed. The disk size is the
length of the file as stored, the image size the length of the decompressed
image.
*/
package smx
